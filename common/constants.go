package common

// DefaultRestInterface is the default interface the REST API binds to
const DefaultRestInterface = "localhost:8080"

// DefaultRestPortOff is the value used to disable the REST API
const DefaultRestPortOff = "off"

// MetricNumEncodedCalls is the metric counting the encoded call data requests
const MetricNumEncodedCalls = "abi_num_encoded_calls"

// MetricNumDecodedOutputs is the metric counting the decoded return data requests
const MetricNumDecodedOutputs = "abi_num_decoded_outputs"

// MetricNumDecodedInputs is the metric counting the decoded call data requests
const MetricNumDecodedInputs = "abi_num_decoded_inputs"

// MetricNumDecodedEvents is the metric counting the decoded receipt logs
const MetricNumDecodedEvents = "abi_num_decoded_events"

// MetricNumCodecErrors is the metric counting the failed encode and decode requests
const MetricNumCodecErrors = "abi_num_codec_errors"

// MetricNumLoadedContracts is the metric holding the number of registered contract ABIs
const MetricNumLoadedContracts = "abi_num_loaded_contracts"
