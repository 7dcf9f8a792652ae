// Package vanilla renders the select control as plain HTML through a pongo2
// template. The markup is a native <select> wrapped in a labelled container:
//
//   - the label points at the select with for/aria-labelledby and carries a
//     required asterisk when configured;
//   - the select references its helper text through aria-describedby and
//     reports the error flag with aria-invalid;
//   - every <option> carries data-value-type so a submitted string can be
//     mapped back to a typed value with Submit.
//
// Label and helper text accept inline formatting (b, i, em, strong, code,
// links); anything else is escaped by a bluemonday policy.
package vanilla
