package database

import "github.com/Masterminds/squirrel"

type FindOptions struct {
	Limit  uint64
	Offset uint64
}

func (opts FindOptions) apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	if opts.Limit > 0 {
		b = b.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		b = b.Offset(opts.Offset)
	}
	return b
}
