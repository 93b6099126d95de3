/*
Package dynamic re-serializes loosely-typed model properties into concrete
types.

Service models frequently carry properties decoded generically, e.g. as
map[string]interface{} from a JSON tree.  Convert re-interprets such a value
as a specific model type, failing with a *DecodeError when the value's shape
does not match the target.
*/
package dynamic
