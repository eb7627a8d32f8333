/*
 * Copyright 2022 The Go Authors<36625090@qq.com>. All rights reserved.
 * Use of this source code is governed by a MIT-style
 * license that can be found in the LICENSE file.
 */

package utils

import (
	"encoding/json"
)

// Bytes2Struct converts a byte slice to a struct using JSON decoding.
func Bytes2Struct[T any](data []byte) (T, error) {
	var result T
	err := json.Unmarshal(data, &result)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Struct2Bytes converts a struct to its JSON encoding.
func Struct2Bytes[T any](data T) ([]byte, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
