// Package cursor implements the position tracker the merge engines use to
// walk one sorted operand. A cursor wraps a borrowed slice and an index;
// Peek returns the head element and Advance moves past it. Cursors are
// cheap value types created per operation call and discarded with it.
//
// SeekGE advances a cursor to the first element at or after a target using
// galloping (exponential) search, which is how the multi-operand difference
// and intersection skip over long stretches of irrelevant elements.
package cursor
