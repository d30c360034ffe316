/*
Package gconf provides a toolset for storing per package configuration
singletons.

Each package keeps at most one configuration object, stored under a fixed
key derived from the package name. Configurations are written at genesis
and read by handlers at runtime.
*/
package gconf
