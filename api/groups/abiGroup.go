package groups

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-contract-sdk-go/abi"
	apiErrors "github.com/multiversx/mx-chain-contract-sdk-go/api/errors"
	"github.com/multiversx/mx-chain-contract-sdk-go/api/shared"
	"github.com/multiversx/mx-chain-contract-sdk-go/facade"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

const (
	getFunctionsPath = "/:contract/functions"
	encodePath       = "/:contract/encode"
	decodeOutputPath = "/:contract/decode-output"
	decodeInputPath  = "/:contract/decode-input"
	decodeEventPath  = "/:contract/decode-event"

	hexPrefix = "0x"
)

// abiFacadeHandler defines the methods to be implemented by a facade for handling abi requests
type abiFacadeHandler interface {
	GetFunctions(contract string) ([]shared.FunctionDescription, error)
	EncodeCall(contract string, function string, args []byte) ([]byte, error)
	DecodeOutput(contract string, function string, data []byte) ([]interface{}, error)
	DecodeInput(contract string, data []byte) (string, []interface{}, error)
	DecodeEvent(contract string, event string, topics [][]byte, data []byte) ([]interface{}, error)
	IsInterfaceNil() bool
}

type abiGroup struct {
	*baseGroup
	facade    abiFacadeHandler
	mutFacade sync.RWMutex
}

// NewAbiGroup returns a new instance of abiGroup
func NewAbiGroup(facadeHandler abiFacadeHandler) (*abiGroup, error) {
	if check.IfNil(facadeHandler) {
		return nil, fmt.Errorf("%w for abi group", apiErrors.ErrNilFacadeHandler)
	}

	ag := &abiGroup{
		facade:    facadeHandler,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    getFunctionsPath,
			Method:  http.MethodGet,
			Handler: ag.getFunctions,
		},
		{
			Path:    encodePath,
			Method:  http.MethodPost,
			Handler: ag.encodeCall,
		},
		{
			Path:    decodeOutputPath,
			Method:  http.MethodPost,
			Handler: ag.decodeOutput,
		},
		{
			Path:    decodeInputPath,
			Method:  http.MethodPost,
			Handler: ag.decodeInput,
		},
		{
			Path:    decodeEventPath,
			Method:  http.MethodPost,
			Handler: ag.decodeEvent,
		},
	}
	ag.endpoints = endpoints

	return ag, nil
}

// getFunctions returns the functions declared by a contract together with their selectors
func (ag *abiGroup) getFunctions(c *gin.Context) {
	contract := c.Param("contract")
	if contract == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrGetFunctions, apiErrors.ErrEmptyContract)
		return
	}

	functions, err := ag.getFacade().GetFunctions(contract)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrGetFunctions, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"functions": functions})
}

// encodeCall returns the call data of a function invoked with the provided JSON arguments
func (ag *abiGroup) encodeCall(c *gin.Context) {
	contract := c.Param("contract")
	if contract == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrEncodeCall, apiErrors.ErrEmptyContract)
		return
	}

	var request shared.EncodeRequest
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}
	if request.Function == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrEncodeCall, apiErrors.ErrEmptyFunction)
		return
	}

	callData, err := ag.getFacade().EncodeCall(contract, request.Function, request.Args)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrEncodeCall, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"data": toHex(callData)})
}

// decodeOutput returns the values held by the return data of a function
func (ag *abiGroup) decodeOutput(c *gin.Context) {
	contract := c.Param("contract")
	if contract == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeOutput, apiErrors.ErrEmptyContract)
		return
	}

	var request shared.DecodeOutputRequest
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}
	if request.Function == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeOutput, apiErrors.ErrEmptyFunction)
		return
	}

	data, err := fromHex(request.Data)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeOutput, err)
		return
	}

	values, err := ag.getFacade().DecodeOutput(contract, request.Function, data)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrDecodeOutput, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"values": values})
}

// decodeInput returns the signature and the arguments of the function addressed by the call data
func (ag *abiGroup) decodeInput(c *gin.Context) {
	contract := c.Param("contract")
	if contract == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeInput, apiErrors.ErrEmptyContract)
		return
	}

	var request shared.DecodeInputRequest
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}

	data, err := fromHex(request.Data)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeInput, err)
		return
	}

	signature, values, err := ag.getFacade().DecodeInput(contract, data)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrDecodeInput, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"function": signature, "values": values})
}

// decodeEvent returns the parameters of a receipt log emitted by the provided event
func (ag *abiGroup) decodeEvent(c *gin.Context) {
	contract := c.Param("contract")
	if contract == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeEvent, apiErrors.ErrEmptyContract)
		return
	}

	var request shared.DecodeEventRequest
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}
	if request.Event == "" {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeEvent, apiErrors.ErrEmptyEvent)
		return
	}

	topics := make([][]byte, 0, len(request.Topics))
	for _, topic := range request.Topics {
		decoded, errDecode := fromHex(topic)
		if errDecode != nil {
			shared.RespondWithValidationError(c, apiErrors.ErrDecodeEvent, errDecode)
			return
		}
		topics = append(topics, decoded)
	}

	data, err := fromHex(request.Data)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrDecodeEvent, err)
		return
	}

	values, err := ag.getFacade().DecodeEvent(contract, request.Event, topics, data)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrDecodeEvent, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"values": values})
}

func respondWithFacadeError(c *gin.Context, err error, innerErr error) {
	if isRequestError(innerErr) {
		shared.RespondWithValidationError(c, err, innerErr)
		return
	}

	shared.RespondWithInternalError(c, err, innerErr)
}

// isRequestError returns true for errors caused by the content of the request, not by the server
func isRequestError(err error) bool {
	requestErrors := []error{
		facade.ErrContractNotFound,
		abi.ErrFunctionNotFound,
		abi.ErrEventNotFound,
		abi.ErrInvalidJSONValue,
		abi.ErrBufferUnderrun,
		abi.ErrInvalidEncoding,
		abi.ErrSchemaMismatch,
		abi.ErrValueOutOfRange,
		abi.ErrUnsupportedValueKind,
	}
	for _, requestErr := range requestErrors {
		if errors.Is(err, requestErr) {
			return true
		}
	}

	return false
}

func fromHex(data string) ([]byte, error) {
	decoded, err := hex.DecodeString(strings.TrimPrefix(data, hexPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apiErrors.ErrInvalidHexData, err)
	}

	return decoded, nil
}

func toHex(data []byte) string {
	return hexPrefix + hex.EncodeToString(data)
}

func (ag *abiGroup) getFacade() abiFacadeHandler {
	ag.mutFacade.RLock()
	defer ag.mutFacade.RUnlock()

	return ag.facade
}

// UpdateFacade will update the facade
func (ag *abiGroup) UpdateFacade(newFacade interface{}) error {
	if newFacade == nil {
		return apiErrors.ErrNilFacadeHandler
	}
	castFacade, ok := newFacade.(abiFacadeHandler)
	if !ok {
		return fmt.Errorf("%w for abi group", apiErrors.ErrFacadeWrongTypeAssertion)
	}

	ag.mutFacade.Lock()
	ag.facade = castFacade
	ag.mutFacade.Unlock()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ag *abiGroup) IsInterfaceNil() bool {
	return ag == nil
}
