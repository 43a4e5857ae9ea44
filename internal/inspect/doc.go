// Package inspect implements the data inspector of the HexForge engine:
// fixed-width decoding of the bytes under the cursor as integers, floats,
// a null-terminated string and a bit pattern, with a byte-order toggle.
//
// Decoding is strictly read-only and total: any request that cannot be
// satisfied (window past the buffer end, unsupported width, failed
// conversion) renders the "-" sentinel instead of returning an error,
// because the cursor lands on arbitrary offsets all the time and that is
// not an error condition.
package inspect
