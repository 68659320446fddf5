package seeder

import (
	"errors"
	"fmt"
)

// attemptsPerValue bounds the producer calls spent per requested value.
const attemptsPerValue = 20

var (
	// ErrInsufficientUnique is returned when the attempt budget runs out
	// before enough distinct values were collected.
	ErrInsufficientUnique = errors.New("could not generate enough unique values")

	// ErrUniquenessExhausted is returned by producers whose unique pool gave
	// up on a draw. The generator treats it as a miss, not a failure.
	ErrUniquenessExhausted = errors.New("uniqueness pool exhausted")
)

// GenerateUnique collects count distinct values from produce, starting from
// the already accepted ones. Values are compared as a whole.
func GenerateUnique[T comparable](count int, accepted []T, produce func() (T, error)) ([]T, error) {
	return GenerateUniqueBy(count, accepted, func(v T) T { return v }, produce)
}

// GenerateUniqueBy is GenerateUnique with uniqueness decided by key.
func GenerateUniqueBy[T any, K comparable](count int, accepted []T, key func(T) K, produce func() (T, error)) ([]T, error) {
	seen := make(map[K]struct{}, max(count, len(accepted)))
	values := make([]T, 0, max(count, len(accepted)))
	for _, v := range accepted {
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, v)
	}

	budget := count * attemptsPerValue
	attempts := 0
	for len(values) < count && attempts < budget {
		attempts++

		v, err := produce()
		if err != nil {
			if errors.Is(err, ErrUniquenessExhausted) {
				continue
			}
			return nil, fmt.Errorf("produce value: %w", err)
		}

		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, v)
	}

	if len(values) < count {
		return nil, fmt.Errorf("%w: got %d of %d after %d attempts", ErrInsufficientUnique, len(values), count, attempts)
	}
	return values, nil
}
