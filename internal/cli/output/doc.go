// Package output renders numera-cli results.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned FIELD/VALUE tables for humans
//   - json.go: indented JSON
//   - yaml.go: block YAML that keeps JSON field order
package output
