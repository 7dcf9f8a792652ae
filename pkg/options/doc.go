// Package options loads option records for the select control from files:
// YAML or JSON lists of {value, text} pairs, or enum schemas inside an
// OpenAPI 3 document.
package options
