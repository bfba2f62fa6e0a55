package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch          = int64(1577836800000) // 起始时间戳 (2020-01-01)
	workerIDBits   = uint(10)
	sequenceBits   = uint(12)
	maxWorkerID    = int64(-1 ^ (-1 << workerIDBits))
	maxSequence    = int64(-1 ^ (-1 << sequenceBits))
	timestampShift = sequenceBits + workerIDBits
	workerIDShift  = sequenceBits
)

// Snowflake 雪花算法ID生成器 用于帖子和评论的主键
type Snowflake struct {
	mutex    sync.Mutex
	lastTime int64
	workerID int64
	sequence int64
}

func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	return &Snowflake{workerID: workerID}, nil
}

// GenerateID 生成全局唯一ID
func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	currentTime := time.Now().UnixNano() / 1e6
	if currentTime < s.lastTime {
		// 时钟回拨，等待追平
		time.Sleep(time.Duration(s.lastTime-currentTime) * time.Millisecond)
		currentTime = time.Now().UnixNano() / 1e6
	}

	if currentTime == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for currentTime <= s.lastTime {
				currentTime = time.Now().UnixNano() / 1e6
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = currentTime
	return ((currentTime - epoch) << timestampShift) |
		(s.workerID << workerIDShift) |
		s.sequence
}

var defaultGenerator *Snowflake

// InitSnowflake 初始化进程级的ID生成器
func InitSnowflake(workerID int64) error {
	g, err := NewSnowflake(workerID)
	if err != nil {
		return err
	}
	defaultGenerator = g
	return nil
}

func GenerateID() int64 {
	return defaultGenerator.GenerateID()
}
