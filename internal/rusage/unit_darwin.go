package rusage

// MaxRSSUnit is the number of bytes in one unit of Resources.MaxRSS.
const MaxRSSUnit uint64 = 1
