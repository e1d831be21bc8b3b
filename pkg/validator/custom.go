package validator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("listen_addr", validateListenAddr)
}

// ":8080" style addresses only.
func validateListenAddr(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	if !strings.HasPrefix(addr, ":") {
		return false
	}
	port, err := strconv.Atoi(addr[1:])
	if err != nil {
		return false
	}
	return port >= 0 && port <= 65535
}
