// Package mongostore implements the model.Collection persistence interface
// over a MongoDB collection using the official v2 driver.
//
// Identifiers are string uuids stored under "_id", assigned on first insert;
// InsertOrUpdate is a ReplaceOne with upsert, so the same call serves both
// first saves and re-saves. Values decode back into the document value
// union (int32 to int, BSON datetimes to UTC time.Time), so a document read
// through FindByID validates against the same schema it was saved with.
//
// # Usage
//
//	var cfg mongostore.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongostore.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
//	store := mongostore.New(client.Database("app").Collection("cars"))
//	cars := model.New(carSchema, store)
//
// Connection management follows the environment-driven configuration and
// retry conventions of the rest of the module; Healthcheck exposes a ping
// probe for readiness endpoints.
package mongostore
