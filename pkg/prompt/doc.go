// Package prompt fills a form interactively in the terminal.
//
// A Session walks the form in document order and asks for each field or
// group once, validating the answer immediately and asking again until it
// passes. Text inputs use survey's inline validation; choices are validated
// after the answer is applied to the form so group rules see the whole
// group.
//
// Prompts go through a Driver. The default driver is backed by
// github.com/AlecAivazis/survey/v2; tests script a fake one.
package prompt
