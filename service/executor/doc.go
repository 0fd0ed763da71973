// Package executor implements the three ways a pipeline stage invokes its
// handlers: folding an ordered chain of transformers over a value, folding
// validity checkers into a single verdict, and fanning one translator out
// concurrently over independent input partitions.
package executor
