package metrics

import (
	"time"
)

type MongoOperation string

const (
	MongoOpFind    MongoOperation = "find"
	MongoOpInsert  MongoOperation = "insert"
	MongoOpReplace MongoOperation = "replace"
	MongoOpDelete  MongoOperation = "delete"
)

// MongoTimer замеряет длительность одной операции с коллекцией
type MongoTimer struct {
	service    string
	operation  MongoOperation
	collection string
	start      time.Time
}

func NewMongoTimer(service string, op MongoOperation, collection string) *MongoTimer {
	return &MongoTimer{
		service:    service,
		operation:  op,
		collection: collection,
		start:      time.Now(),
	}
}

func (mt *MongoTimer) ObserveDuration() {
	duration := time.Since(mt.start).Seconds()
	MongoOperationDuration.WithLabelValues(mt.service, string(mt.operation), mt.collection).Observe(duration)
}

func RecordMongoError(service string, op MongoOperation) {
	MongoErrors.WithLabelValues(service, string(op)).Inc()
}

// ObserveUpstream записывает метрики одного запроса к внешнему сервису
func ObserveUpstream(service, target string, start time.Time) {
	UpstreamRequestDuration.WithLabelValues(service, target).Observe(time.Since(start).Seconds())
}

func RecordUpstreamError(service, target, kind string) {
	UpstreamErrors.WithLabelValues(service, target, kind).Inc()
}
