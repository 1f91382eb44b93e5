// Package bitstream provides sequential bit-addressable readers and writers.
//
// Values are packed most significant bit first. A Writer pads the last
// byte with zero bits on Close; readers cannot tell padding from data, so
// formats built on top must carry their own terminator.
package bitstream
