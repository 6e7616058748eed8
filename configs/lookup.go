package configs

import (
	"errors"
	"iter"
)

// Lookup decodes the first value at path.
// ok is false if no file defines path.
func Lookup[T any](loader Loader, path string) (ret T, ok bool, err error) {
	err = loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return ret, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}

// First is Lookup that panics on errors and returns zero for missing values.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}

func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
