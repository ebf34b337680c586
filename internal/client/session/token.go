package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/recco/internal/common"
)

// DecodeSubject extracts the sub claim from a JWT without verifying its
// signature. The server is the verification authority; the client decodes
// purely to learn which directory record to display, and nothing privileged
// may ever be gated on the result.
func DecodeSubject(token string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", common.ErrInvalidToken
	}
	return sub, nil
}
