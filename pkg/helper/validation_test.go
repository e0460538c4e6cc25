package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("5551234"))
	assert.True(t, IsValidPhoneNumber("+57 (300) 555-1234"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("555-abc-1234"))
	assert.False(t, IsValidPhoneNumber("1234567890123456"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("S3cure!pass"))
	assert.False(t, IsStrongPassword("short1!"))
	assert.False(t, IsStrongPassword("alllowercase1!"))
	assert.False(t, IsStrongPassword("NoDigits!!"))
	assert.False(t, IsStrongPassword("NoSymbols123"))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://clinic.example/api"))
	assert.False(t, IsValidURL("ftp://clinic.example"))
	assert.True(t, IsValidURL("http://10.0.0.1:8080/health"))
	assert.False(t, IsValidURL("not a url"))
	assert.False(t, IsValidURL(""))
}

func TestIsValidIP(t *testing.T) {
	assert.True(t, IsValidIP("192.168.1.10"))
	assert.True(t, IsValidIP("::1"))
	assert.True(t, IsValidIP(" 10.0.0.1 "))
	assert.False(t, IsValidIP("300.1.1.1"))
}

func TestIsValidCreditCard(t *testing.T) {
	assert.True(t, IsValidCreditCard("4111 1111 1111 1111"))
	assert.False(t, IsValidCreditCard("4111 1111 1111 1112"))
	assert.True(t, IsValidCreditCard("4539-5787-6362-1486"))
	assert.False(t, IsValidCreditCard("4111"))
	assert.False(t, IsValidCreditCard("4111 1111 abcd 1111"))
}

func TestIsValidIdentityNumber(t *testing.T) {
	assert.True(t, IsValidIdentityNumber("12345678"))
	assert.False(t, IsValidIdentityNumber("01234567"))
	assert.False(t, IsValidIdentityNumber("1234"))
	assert.False(t, IsValidIdentityNumber("12A45678"))
}
