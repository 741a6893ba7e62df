// Package generator defines the content-generation collaborator interface
// and its implementations: an OpenAI-compatible client, plus retry,
// circuit-breaker, and badger-backed caching wrappers that all satisfy the
// same Generator interface and compose freely.
package generator
