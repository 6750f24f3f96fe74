package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{
			name:     "string value",
			value:    "hello",
			expected: true,
		},
		{
			name:     "empty string",
			value:    "",
			expected: true,
		},
		{
			name:     "integer",
			value:    42,
			expected: false,
		},
		{
			name:     "nil",
			value:    nil,
			expected: false,
		},
		{
			name:     "byte slice",
			value:    []byte("hello"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsString(tt.value))
		})
	}
}

func TestIsTrue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{
			name:     "literal true string",
			value:    "true",
			expected: true,
		},
		{
			name:     "literal false string",
			value:    "false",
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
		{
			name:     "arbitrary string",
			value:    "yes",
			expected: false,
		},
		{
			name:     "bool true",
			value:    true,
			expected: true,
		},
		{
			name:     "bool false",
			value:    false,
			expected: false,
		},
		{
			name:     "non-zero int",
			value:    1,
			expected: true,
		},
		{
			name:     "zero int",
			value:    0,
			expected: false,
		},
		{
			name:     "non-zero float",
			value:    0.5,
			expected: true,
		},
		{
			name:     "zero float",
			value:    0.0,
			expected: false,
		},
		{
			name:     "nil",
			value:    nil,
			expected: false,
		},
		{
			name:     "non-nil struct",
			value:    struct{}{},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTrue(tt.value))
		})
	}
}

func TestIsKeyID(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{
			name:     "lowercase hex",
			value:    "0123456789abcdef",
			expected: true,
		},
		{
			name:     "uppercase hex",
			value:    "0123456789ABCDEF",
			expected: true,
		},
		{
			name:     "mixed case hex",
			value:    "0123456789AbCdEf",
			expected: true,
		},
		{
			name:     "too short",
			value:    "0123456789abcde",
			expected: false,
		},
		{
			name:     "too long",
			value:    "0123456789abcdef0",
			expected: false,
		},
		{
			name:     "non-hex character",
			value:    "0123456789abcdeg",
			expected: false,
		},
		{
			name:     "0x prefix",
			value:    "0x0123456789abcd",
			expected: false,
		},
		{
			name:     "fingerprint length",
			value:    "0123456789abcdef0123456789abcdef01234567",
			expected: false,
		},
		{
			name:     "empty string",
			value:    "",
			expected: false,
		},
		{
			name:     "non-string",
			value:    1234567890123456,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKeyID(tt.value))
		})
	}
}

func TestIsFingerprint(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{
			name:     "lowercase hex",
			value:    "0123456789abcdef0123456789abcdef01234567",
			expected: true,
		},
		{
			name:     "uppercase hex",
			value:    "0123456789ABCDEF0123456789ABCDEF01234567",
			expected: true,
		},
		{
			name:     "too short",
			value:    "0123456789abcdef0123456789abcdef0123456",
			expected: false,
		},
		{
			name:     "too long",
			value:    "0123456789abcdef0123456789abcdef012345678",
			expected: false,
		},
		{
			name:     "non-hex character",
			value:    "0123456789abcdef0123456789abcdef0123456z",
			expected: false,
		},
		{
			name:     "key ID length",
			value:    "0123456789abcdef",
			expected: false,
		},
		{
			name:     "non-string",
			value:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFingerprint(tt.value))
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{
			name:     "simple address",
			value:    "user@example.com",
			expected: true,
		},
		{
			name:     "dotted local part",
			value:    "first.last@example.com",
			expected: true,
		},
		{
			name:     "plus tag",
			value:    "user+tag@example.com",
			expected: true,
		},
		{
			name:     "quoted local part",
			value:    `"john doe"@example.com`,
			expected: true,
		},
		{
			name:     "bracketed IPv4 domain",
			value:    "user@[192.168.0.1]",
			expected: true,
		},
		{
			name:     "subdomain",
			value:    "user@mail.example.co.uk",
			expected: true,
		},
		{
			name:     "not an email",
			value:    "not-an-email",
			expected: false,
		},
		{
			name:     "missing local part",
			value:    "@example.com",
			expected: false,
		},
		{
			name:     "missing domain",
			value:    "user@",
			expected: false,
		},
		{
			name:     "bare domain label",
			value:    "user@example",
			expected: false,
		},
		{
			name:     "double dot in local part",
			value:    "user..name@example.com",
			expected: false,
		},
		{
			name:     "whitespace in local part",
			value:    "user name@example.com",
			expected: false,
		},
		{
			name:     "non-string",
			value:    42,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEmail(tt.value))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already normalized",
			input:    "user@example.com",
			expected: "user@example.com",
		},
		{
			name:     "uppercase",
			input:    "User@Example.COM",
			expected: "user@example.com",
		},
		{
			name:     "surrounding whitespace",
			input:    "  user@example.com\n",
			expected: "user@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEmail(tt.input))
		})
	}
}
