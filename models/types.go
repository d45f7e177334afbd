// Package models contain needed models
package models

import "classical-cipher-backend/crypto"

// CipherRequest carries the text and the key for one transform. Key holds
// the integer, keyword, column count or JSON matrix; Key2 is the affine b.
type CipherRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
	Key2 string `json:"key2"`
}

// TraceRequest asks for the step trace of one transform
type TraceRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
	Key2 string `json:"key2"`
	Mode string `json:"mode" binding:"omitempty,oneof=encrypt decrypt"`
}

// CipherResponse represents the response after encryption or decryption
type CipherResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Cipher    string `json:"cipher,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Result    string `json:"result,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// TraceResponse holds the ordered steps plus the final result, so a client
// can animate without recomputing anything
type TraceResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	TraceID   string       `json:"trace_id,omitempty"`
	Cipher    string       `json:"cipher,omitempty"`
	Mode      string       `json:"mode,omitempty"`
	Result    string       `json:"result,omitempty"`
	StepCount int          `json:"step_count"`
	Steps     crypto.Trace `json:"steps,omitempty"`
	ErrorKind string       `json:"error_kind,omitempty"`
}

// CatalogueResponse lists the supported ciphers
type CatalogueResponse struct {
	Success bool          `json:"success"`
	Ciphers []crypto.Info `json:"ciphers"`
}
