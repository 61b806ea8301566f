package handler

import "encoding/json"

// Pointer fields distinguish "absent" from zero values so validation can
// report which field is wrong. A price sent as a JSON string fails body
// parsing outright, which is also an invalid-input error.
type invoiceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	PriceStars  *float64 `json:"price_stars"`
	Payload     *string  `json:"payload"`
}

type invoiceResponse struct {
	OK          bool   `json:"ok"`
	InvoiceLink string `json:"invoiceLink"`
}

type deliverRequest struct {
	Payload *string `json:"payload"`
}

type deliverResponse struct {
	OK     bool   `json:"ok"`
	Reward string `json:"reward"`
}

type errorResponse struct {
	OK          bool            `json:"ok"`
	Error       string          `json:"error"`
	RawResponse json.RawMessage `json:"raw_response,omitempty"`
}
