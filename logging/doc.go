/*
Package logging provides the SDK's go-kit logging infrastructure.

Every component in this module accepts a go-kit log.Logger.  Callers that
do not care about logging may pass nil anywhere a logger is accepted, in
which case the package-level NOP logger is used.
*/
package logging
