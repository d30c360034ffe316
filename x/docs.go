/*
Package x contains the standard extensions

Extensions implement common functionality (Handler, Decorator,
etc.) and can be combined together to construct an application

All sub-packages are various extensions, useful to build
applications, but not necessary to use the framework.
You are welcome to import them if desired, but if they
don't match your particular needs, you may also write your
own extensions and use them instead.
*/
package x
