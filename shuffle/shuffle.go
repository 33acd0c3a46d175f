// Package shuffle permutes sequences with the Fisher-Yates algorithm driven
// by an unbiased sampler, making every permutation equally likely.
package shuffle

import "github.com/ggardner42/card-server/sample"

// Interface is the minimal view of a sequence the shuffler needs, in the
// manner of sort.Interface. The caller keeps ownership of the elements; the
// shuffler only swaps them in place.
type Interface interface {
	Len() int
	Swap(i, j int)
}

// Shuffle permutes data in place. For a sequence of length N it draws
// exactly N-1 samples, swapping each position from the end with a uniformly
// chosen earlier-or-equal position. Sequences shorter than two elements are
// left untouched without drawing any bits.
func Shuffle(data Interface, s *sample.Sampler) error {
	for i := data.Len() - 1; i > 0; i-- {
		j, err := s.Intn(i + 1)
		if err != nil {
			return err
		}
		data.Swap(i, j)
	}
	return nil
}

// Slice permutes s in place using smp.
func Slice[T any](s []T, smp *sample.Sampler) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := smp.Intn(i + 1)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}
