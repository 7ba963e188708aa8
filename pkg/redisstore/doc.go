// Package redisstore implements the model.Collection persistence interface
// over Redis.
//
// Documents are serialized to JSON under "<prefix>:<id>" keys. JSON alone
// cannot carry the whole document value union, so three envelope forms keep
// kinds stable across a round trip: {"$long": "..."} for 64-bit integers,
// {"$float": n} for floats, and {"$time": "..."} for datetimes. Reading a
// document back therefore yields values of exactly the kinds that were
// saved, and schema validation behaves identically on both sides.
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store := redisstore.New(client, redisstore.WithKeyPrefix("cars"))
//	cars := model.New(carSchema, store)
package redisstore
