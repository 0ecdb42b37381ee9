//go:build tools

package tools

// Pins the swagger generator used by `swag init`.
import _ "github.com/swaggo/swag/cmd/swag"
