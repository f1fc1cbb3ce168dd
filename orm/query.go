package orm

import "github.com/covault/covault"

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr covault.Iterator) []covault.Model {
	defer itr.Close()

	res := []covault.Model{}
	for ; itr.Valid(); itr.Next() {
		mod := covault.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
	}
	return res
}

// queryPrefix returns all models with this prefix in the db
func queryPrefix(db covault.ReadOnlyKVStore, prefix []byte) []covault.Model {
	itr := db.Iterator(prefixRange(prefix))
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into the (start, end) arguments
// for an iterator covering exactly that prefix
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
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
