package api

import "testing"

func TestIsInvalidSessionMessage(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"token es inválido o ha expirado", true},
		{"Token es inválido o ha expirado", true},
		{"Error: usuario no encontrado", true},
		{"USUARIO DESHABILITADO", true},
		{"No tiene permisos para esta sección", false},
		{"", false},
		{"token expirado", false}, // partial phrase is not enough
	}
	for _, tc := range cases {
		if got := IsInvalidSessionMessage(tc.msg); got != tc.want {
			t.Errorf("IsInvalidSessionMessage(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}
