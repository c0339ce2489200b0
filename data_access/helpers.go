package data_access

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func findPage(skip, limit int) *options.FindOptions {
	return options.Find().SetSkip(int64(skip)).SetLimit(int64(limit))
}

// pagePipeline builds the $skip/$limit stages for a paginated aggregation.
// A zero limit emits no $limit stage: the server rejects $limit: 0, and a
// zero limit on the Find-based repositories already means "no limit".
func pagePipeline(skip, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	return pipeline
}

func findOneAndUpdateReturnAfter() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
