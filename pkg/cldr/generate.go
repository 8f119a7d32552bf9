package cldr

//go:generate go run github.com/localekit/localekit/cmd/cldrgen --data ../../data/locales --out locales_gen.go
