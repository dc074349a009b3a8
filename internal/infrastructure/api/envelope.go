package api

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// El backend es inconsistente entre endpoints casi duplicados: algunos
// responden el payload a pelo y otros lo envuelven en {isSuccess, data}. La
// forma canónica para la consola es el payload desnudo; el sobre se trata como
// deriva del API y se desenvuelve aquí, en un único punto, dejando constancia
// en el log en lugar de ramificar por tipo en cada call site.

// envelope sobre {isSuccess, data} (o solo {data}) que arrastran algunos endpoints.
type envelope struct {
	IsSuccess *bool           `json:"isSuccess"`
	Data      json.RawMessage `json:"data"`
}

func (c *Client) decode(method, path string, raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil && string(env.Data) != "null" {
		c.log.Debug().Str("method", method).Str("path", path).Msg("sobre data desenvuelto (deriva del API)")
		raw = env.Data
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("respuesta de %s %s fuera de esquema: %w", method, path, err)
	}
	return nil
}

// decodeCount normaliza los endpoints de conteo, que unas veces responden un
// número a pelo y otras un objeto {count: n}. Cualquier otra forma se rechaza.
func decodeCount(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var obj struct {
		Count *int `json:"count"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Count != nil {
		return *obj.Count, nil
	}
	return 0, fmt.Errorf("conteo fuera de esquema: %s", string(raw))
}

// decodeAmount normaliza /Sales/monthly-revenue, que responde un número a pelo
// o un objeto {totalRevenue: n}.
func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	var n decimal.Decimal
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var obj struct {
		TotalRevenue *decimal.Decimal `json:"totalRevenue"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.TotalRevenue != nil {
		return *obj.TotalRevenue, nil
	}
	return decimal.Zero, fmt.Errorf("importe fuera de esquema: %s", string(raw))
}
