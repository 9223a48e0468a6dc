// Package cidutil считает контент-адреса (CIDv1) для отдаваемых артефактов, например ETag таблицы стилей.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// CIDv1RawSHA256 возвращает CIDv1 (кодек raw, multihash sha2-256) в строковом виде.
func CIDv1RawSHA256(data []byte) (string, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}

// ETag — CID содержимого в виде сильного HTTP ETag (в кавычках).
func ETag(data []byte) (string, error) {
	c, err := CIDv1RawSHA256(data)
	if err != nil {
		return "", err
	}
	return `"` + c + `"`, nil
}

// Verify проверяет, что s — CID этого содержимого.
func Verify(s string, data []byte) bool {
	parsed, err := cid.Decode(s)
	if err != nil {
		return false
	}
	want, err := CIDv1RawSHA256(data)
	if err != nil {
		return false
	}
	return parsed.String() == want
}
