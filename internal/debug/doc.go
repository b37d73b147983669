/*
Package debug provides conditional runtime assertions and debug logging.

# Assertions

Build with the assert tag to enable runtime assertions. Without the tag,
assertion calls compile to nothing and carry no cost in release binaries.

# Logging

Build with the debug tag to enable debug logs. Without the tag, logging
calls compile to nothing.
*/
package debug
