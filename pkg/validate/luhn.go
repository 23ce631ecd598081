package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s is a valid card number by Luhn checksum.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
