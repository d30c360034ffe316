/*
Package custodytest provides mocks and helpers for testing extensions.

It ships condition factories, context based authentication doubles and
counting handler and decorator implementations, so extension tests can
wire a realistic processing stack without pulling in real cryptography.
*/
package custodytest
