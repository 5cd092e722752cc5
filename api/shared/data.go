package shared

import "encoding/json"

// FunctionDescription is the public view of a contract function
type FunctionDescription struct {
	Name            string   `json:"name"`
	Signature       string   `json:"signature"`
	Selector        string   `json:"selector"`
	StateMutability string   `json:"stateMutability"`
	Inputs          []string `json:"inputs"`
	Outputs         []string `json:"outputs"`
}

// EncodeRequest holds the function and the JSON arguments of a call data encoding request
type EncodeRequest struct {
	Function string          `json:"function"`
	Args     json.RawMessage `json:"args"`
}

// DecodeOutputRequest holds the function and the 0x hex return data to be decoded
type DecodeOutputRequest struct {
	Function string `json:"function"`
	Data     string `json:"data"`
}

// DecodeInputRequest holds the 0x hex call data to be decoded
type DecodeInputRequest struct {
	Data string `json:"data"`
}

// DecodeEventRequest holds the event, the 0x hex topics and the 0x hex data of a receipt log
type DecodeEventRequest struct {
	Event  string   `json:"event"`
	Topics []string `json:"topics"`
	Data   string   `json:"data"`
}
