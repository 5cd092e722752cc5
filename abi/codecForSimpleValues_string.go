package abi

func (wc *wordCodec) encodeString(value *ValueObject) ([]byte, error) {
	text, err := value.Text()
	if err != nil {
		return nil, err
	}

	return packBytesSlice([]byte(text)), nil
}

func (wc *wordCodec) decodeString(data []byte, offset int, value *ValueObject) error {
	content, err := readBytesSlice(data, offset)
	if err != nil {
		return err
	}

	value.payload = string(content)
	return nil
}
