package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"goflopbridge/config"
	"goflopbridge/types"

	"github.com/gomodule/redigo/redis"
)

var pool *redis.Pool

// reservation lifetime; long enough to cover a full poll timeout, short
// enough that a crashed request does not block resubmission for long
const reserveTTLSeconds = 300

const processedSet = "processedtx:all"

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

func Init() {
	redisAddr := fmt.Sprintf("%s:%d", config.Config.Server.RedisHost, config.Config.Server.RedisPort)
	pool = &redis.Pool{
		MaxIdle: 5,
		Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", redisAddr, timeoutDialOptions()...) },
	}
}

// Store is the redigo-backed settlement ledger. It satisfies bridge.Store.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func recordKey(txid string) string {
	return fmt.Sprintf("processedtx:%s", txid)
}

func reserveKey(txid string) string {
	return fmt.Sprintf("reservetx:%s", txid)
}

func (s *Store) IsProcessed(txid string) (bool, error) {
	conn := pool.Get()
	defer conn.Close()

	exists, err := redis.Bool(conn.Do("EXISTS", recordKey(txid)))
	if err != nil {
		log.Printf("error Redis EXISTS: %s", err.Error())
		return false, err
	}
	return exists, nil
}

// Reserve grabs a short-lived exclusive claim on a txid. Returns false when
// another request already holds one.
func (s *Store) Reserve(txid string) (bool, error) {
	conn := pool.Get()
	defer conn.Close()

	reply, err := conn.Do("SET", reserveKey(txid), 1, "NX", "EX", reserveTTLSeconds)
	if err != nil {
		log.Printf("error Redis SET NX: %s", err.Error())
		return false, err
	}
	return reply != nil, nil
}

func (s *Store) Release(txid string) error {
	conn := pool.Get()
	defer conn.Close()

	_, err := conn.Do("DEL", reserveKey(txid))
	if err != nil {
		log.Printf("error Redis DEL: %s", err.Error())
		return err
	}
	return nil
}

// Commit writes the permanent processed record and drops the matching
// reservation. Records are never mutated or deleted afterwards.
func (s *Store) Commit(rec *types.ProcessedTxRecord) error {
	conn := pool.Get()
	defer conn.Close()

	if rec == nil {
		return errors.New("null record to store")
	}
	if rec.TxID == "" {
		return errors.New("processed record cannot have empty txid")
	}

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cannot marshal processed record to JSON: %s", err.Error())
	}

	key := recordKey(rec.TxID)

	_, err = conn.Do("SET", key, recJSON)
	if err != nil {
		log.Printf("error Redis SET: %s", err.Error())
		return err
	}

	// also add the key to the enumeration SET
	_, err = conn.Do("SADD", processedSet, key)
	if err != nil {
		log.Printf("error Redis SADD: %s", err.Error())
		return err
	}

	_, err = conn.Do("DEL", reserveKey(rec.TxID))
	if err != nil {
		log.Printf("error Redis DEL: %s", err.Error())
		return err
	}

	return nil
}

func (s *Store) GetProcessed(txid string) (*types.ProcessedTxRecord, error) {
	conn := pool.Get()
	defer conn.Close()

	raw, err := redis.Bytes(conn.Do("GET", recordKey(txid)))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		log.Printf("error Redis GET: %s", err.Error())
		return nil, err
	}

	var rec types.ProcessedTxRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindAllProcessed scans the whole ledger. Meant for the operator stats
// endpoint, performance degrades linearly with ledger size.
func (s *Store) FindAllProcessed() ([]*types.ProcessedTxRecord, error) {
	conn := pool.Get()
	defer conn.Close()

	recs := make([]*types.ProcessedTxRecord, 0)

	var cursor int64
	for {
		values, err := redis.Values(conn.Do("SSCAN", processedSet, cursor))
		if err != nil {
			return nil, err
		}

		var keys []string
		values, err = redis.Scan(values, &cursor, &keys)
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			raw, err := redis.Bytes(conn.Do("GET", key))
			if errors.Is(err, redis.ErrNil) {
				continue
			}
			if err != nil {
				log.Printf("error Redis GET: %s", err.Error())
				return nil, err
			}

			var rec types.ProcessedTxRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				return nil, err
			}
			recs = append(recs, &rec)
		}

		if cursor == 0 {
			break
		}
	}

	return recs, nil
}
