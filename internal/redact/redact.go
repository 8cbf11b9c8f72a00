// Package redact strips secrets from strings before they are logged or
// returned in error responses. Besides a fixed set of patterns (bearer
// tokens, key=value credentials, stack traces) it redacts any literal value
// registered at startup, such as the configured API token.
package redact

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

// Precompiled regex patterns
var (
	bearerRegex   = regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]+`)
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|api[_-]?token|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{stackTraceRegex, RedactedStackPlaceholder},
		{bearerRegex, "Bearer " + RedactedTokenPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{apiKeyRegex, RedactedKeyPlaceholder},
	}

	mu      sync.RWMutex
	secrets []string
)

// minSecretLength guards against registering values so short that redacting
// them would mangle ordinary text.
const minSecretLength = 4

// RegisterSecret adds a literal value that String will always replace.
// Values shorter than four characters are ignored.
func RegisterSecret(secret string) {
	if len(secret) < minSecretLength {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	for _, s := range secrets {
		if s == secret {
			return
		}
	}
	secrets = append(secrets, secret)
	// longest first so overlapping secrets are fully removed
	sort.Slice(secrets, func(i, j int) bool { return len(secrets[i]) > len(secrets[j]) })
}

// ResetSecrets forgets every registered secret.
func ResetSecrets() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, s := range secrets {
		result = strings.ReplaceAll(result, s, RedactionPlaceholder)
	}
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
