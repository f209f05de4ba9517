// Command graphql-directives works with GraphQL directive definitions.
//
// # About directives
//
// A directive definition declares a name, the places in a document or schema where the directive
// may be applied, optional arguments and whether it may appear more than once at the same place.
// Every schema implicitly declares the specified directives @include, @skip and @deprecated.
//
// Source: https://spec.graphql.org/October2021/#sec-Type-System.Directives
//
// # About this module
//
// The directive package holds the immutable directive model together with the specified directives.
// Directives can be built in code, read from GraphQL SDL (package sdl) or from YAML and JSON
// configuration files (package directiveconfig). The registry package collects the directives of a
// schema and the directiveprinter package prints them back to SDL.
//
// The command line tool offers three commands:
//   - print: load directive definitions and print them as SDL
//   - check: validate directive definitions and report every error found
//   - specified: print the specified directives
package main
