package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Lutefd/estate-site/internal/model"
	"github.com/Lutefd/estate-site/internal/repository"
	"github.com/google/uuid"
)

var (
	InfoLogger          *log.Logger
	ErrorLogger         *log.Logger
	logChan             chan model.Log
	logRepo             repository.LogRepository
	source              = "web"
	closed              bool
	mu                  sync.RWMutex
	done                chan struct{}
	loggerBufferSize    = 1000
	LoggerSleepDuration = 100 * time.Millisecond
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	logChan = make(chan model.Log, loggerBufferSize)
}

// InitLogger starts persisting entries through repo. Entries logged before the
// call are buffered and flushed once it runs.
func InitLogger(repo repository.LogRepository, src string) {
	mu.Lock()
	defer mu.Unlock()
	if closed {
		logChan = make(chan model.Log, loggerBufferSize)
		closed = false
	}
	logRepo = repo
	if src != "" {
		source = src
	}
	done = make(chan struct{})
	go processLogs(repo, logChan, done)
}

func processLogs(repo repository.LogRepository, entries <-chan model.Log, finished chan<- struct{}) {
	defer close(finished)
	for logEntry := range entries {
		if err := repo.SaveLog(context.Background(), logEntry); err != nil {
			ErrorLogger.Printf("failed to save log: %v", err)
		}
	}
}

func logAsync(level model.LogLevel, message string) {
	if level == model.LogLevelInfo {
		InfoLogger.Output(3, message)
	} else {
		ErrorLogger.Output(3, message)
	}

	mu.RLock()
	defer mu.RUnlock()
	if closed {
		return
	}
	logEntry := model.Log{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		Source:    source,
	}

	select {
	case logChan <- logEntry:
	default:
		ErrorLogger.Printf("log channel full. Dropping log: %v", logEntry)
	}
}

func Info(v ...interface{}) {
	logAsync(model.LogLevelInfo, fmt.Sprint(v...))
}

func Infof(format string, v ...interface{}) {
	logAsync(model.LogLevelInfo, fmt.Sprintf(format, v...))
}

func Error(v ...interface{}) {
	logAsync(model.LogLevelError, fmt.Sprint(v...))
}

func Errorf(format string, v ...interface{}) {
	logAsync(model.LogLevelError, fmt.Sprintf(format, v...))
}

// Shutdown stops accepting entries, waits for the pending ones to be saved and
// closes the repository.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	if closed {
		mu.Unlock()
		return nil
	}
	closed = true
	close(logChan)
	repo, finished := logRepo, done
	mu.Unlock()

	if repo == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-finished:
		return repo.Close()
	}
}
