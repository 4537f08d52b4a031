package orm

import "github.com/diap-network/diap"

// queryPrefix returns all models with the given key prefix, in
// ascending key order.
func queryPrefix(db diap.ReadOnlyKVStore, prefix []byte) []diap.Model {
	itr := db.Iterator(prefixRange(prefix))
	return ConsumeIterator(itr)
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr diap.Iterator) []diap.Model {
	defer itr.Close()

	res := []diap.Model{}
	for ; itr.Valid(); itr.Next() {
		mod := diap.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// prefixRange turns a prefix into (start, end) to create
// and iterator over the prefix.
//
// Assumes prefix is non-zero length.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte?
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}
