/*
Package tranchetest provides mocks and helpers for testing code built on
top of the tranche framework.

Structures implemented here provide a simplified implementation of
interfaces declared in the root package. They should be used in tests
instead of full implementations so that setup stays short and test
failures point at the code under test rather than the fixtures.
*/
package tranchetest
