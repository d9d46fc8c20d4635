package service

// Sampler abstracts the randomness source for testability. Implementations
// draw n characters from pool independently, uniformly and with replacement,
// and return them in draw order.
type Sampler interface {
	Sample(pool Pool, n int) (string, error)
}
