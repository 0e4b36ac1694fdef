// Package submission turns the current state of a form into an immutable
// Record ready to be posted to a webhook or exported.
//
// Collector walks every named control in document order. Repeated names
// become ordered lists, unchecked checkboxes are recorded as false, and
// metadata (application identifier, ISO-8601 timestamp, formatted date and
// time, list of real field names) is injected after collection. Collection
// never validates; callers run form validation first.
package submission
