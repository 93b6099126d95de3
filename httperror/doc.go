/*
Package httperror maps HTTP response status codes onto a closed set of
typed service errors.

Instead of a subclass per status code, a single error carrier E is tagged
with a Kind.  Callers dispatch with a switch over E.Kind or with errors.As
plus IsKind.
*/
package httperror
