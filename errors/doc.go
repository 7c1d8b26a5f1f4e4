/*
Package errors implements custom error interfaces for tranche.

A fixed set of root errors is declared here, each with a unique numeric
code that is safe to return to the client. All errors created during
runtime should wrap one of the root errors, using Wrap or Wrapf, so that
they can be categorized without leaking internal details.

Extensions register their own root errors with codes starting at 1000.
*/
package errors
