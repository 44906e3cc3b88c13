package cmd

import (
	"context"
	"strings"

	"github.com/jsphweid/tonality/constants"
	"github.com/jsphweid/tonality/db"
	"github.com/jsphweid/tonality/scale"
	"github.com/pkg/errors"
)

func openStore() (db.ScaleStore, error) {
	return db.NewStore(db.Config{
		Endpoint: constants.GetDynamoEndpoint(),
		Region:   constants.GetDynamoRegion(),
		Table:    constants.GetScaleTable(),
	})
}

// lookupScale resolves a standard scale name, then a stored one, then
// reads name as a list of intervals. db.ErrNotFound means none matched.
func lookupScale(ctx context.Context, store db.ScaleStore, name string) (scale.Scale, error) {
	if s, ok := scale.ByName(name); ok {
		return s, nil
	}
	s, err := store.Get(ctx, name)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return scale.Scale{}, err
	}
	if strings.ContainsAny(name, "0123456789") {
		return scale.Parse(name)
	}
	return scale.Scale{}, errors.Wrapf(db.ErrNotFound, "no scale named `%s`", name)
}

// allScales maps every standard and stored scale name to its scale. Stored
// scales never shadow standard ones.
func allScales(ctx context.Context, store db.ScaleStore) (map[string]scale.Scale, error) {
	names, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	res, err := store.GetMany(ctx, names)
	if err != nil {
		return nil, err
	}
	for _, name := range scale.Names() {
		res[name], _ = scale.ByName(name)
	}
	return res, nil
}

// maxScaleCount caps how many pitches of a scale one command or request may
// lay out.
const maxScaleCount = 1000

func checkCount(count int) error {
	if count < 0 || count > maxScaleCount {
		return errors.Errorf("count %d should be between 0 and %d", count, maxScaleCount)
	}
	return nil
}
