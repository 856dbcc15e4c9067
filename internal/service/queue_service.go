package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"showtracker/model"
	errorHandler "showtracker/pkg/error"
	"sync"
	"time"
)

type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

type IEventService interface {
	Emit(event model.ActivityEvent)
}

// EventQueue buffers activity events in memory and hands them to the broker
// from a fixed set of workers, so request handlers never wait on the broker.
// Undelivered events are written to queueFile on Close and reloaded on start.
type EventQueue struct {
	queue          []model.ActivityEvent
	mutex          sync.Mutex
	queueFile      string
	capacity       int
	workers        int
	publisher      IEventPublisher
	publishTimeout time.Duration
	doneChan       chan struct{}
	closeOnce      sync.Once
	wg             sync.WaitGroup
}

var ErrOverflow = errors.New("overflow")

func NewEventQueue(publisher IEventPublisher, queueFile string, workers int, capacity int) *EventQueue {
	eq := &EventQueue{
		queue:          make([]model.ActivityEvent, 0, capacity),
		queueFile:      queueFile,
		capacity:       capacity,
		workers:        workers,
		publisher:      publisher,
		publishTimeout: 5 * time.Second,
		doneChan:       make(chan struct{}),
	}

	eq.loadQueue()

	return eq
}

//---------------------------------------
//---------------------------------------

func (eq *EventQueue) Emit(event model.ActivityEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if _, err := eq.Enqueue(event); err != nil {
		errorMessage := fmt.Sprintf("Error on queueing activity event %s: %v", event.Type, err)
		errorHandler.SaveError(errorMessage, err)
	}
}

func (eq *EventQueue) Enqueue(event model.ActivityEvent) (int, error) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	if len(eq.queue) >= eq.capacity {
		return -1, ErrOverflow
	}

	eq.queue = append(eq.queue, event)
	return len(eq.queue) - 1, nil
}

func (eq *EventQueue) Dequeue() (model.ActivityEvent, bool) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	if len(eq.queue) == 0 {
		return model.ActivityEvent{}, false
	}

	event := eq.queue[0]
	eq.queue = eq.queue[1:]
	return event, true
}

func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.queue)
}

//---------------------------------------
//---------------------------------------

func (eq *EventQueue) Start(emptyQueueSleep time.Duration) {
	for i := 0; i < eq.workers; i++ {
		eq.wg.Add(1)
		go eq.worker(i, emptyQueueSleep)
	}
}

func (eq *EventQueue) worker(wid int, emptyQueueSleep time.Duration) {
	defer eq.wg.Done()

	for {
		select {
		case <-eq.doneChan:
			return
		default:
		}

		event, exist := eq.Dequeue()
		if !exist {
			select {
			case <-eq.doneChan:
				return
			case <-time.After(emptyQueueSleep):
			}
			continue
		}

		eq.publish(wid, event)
	}
}

func (eq *EventQueue) publish(wid int, event model.ActivityEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), eq.publishTimeout)
	defer cancel()

	if err := eq.publisher.Publish(ctx, string(event.Type), event); err != nil {
		errorMessage := fmt.Sprintf("Error on publishing activity event %s (worker %d): %v", event.Type, wid, err)
		errorHandler.SaveError(errorMessage, err)
	}
}

//---------------------------------------
//---------------------------------------

func (eq *EventQueue) saveQueue() {
	if eq.queueFile == "" {
		return
	}
	data, err := json.Marshal(eq.queue)
	if err != nil {
		errMsg := fmt.Sprintf("Error marshaling event queue: %v", err)
		errorHandler.SaveError(errMsg, err)
		return
	}

	err = os.WriteFile(eq.queueFile, data, 0644)
	if err != nil {
		errMsg := fmt.Sprintf("Error saving event queue: %v", err)
		errorHandler.SaveError(errMsg, err)
	}
}

func (eq *EventQueue) loadQueue() {
	if eq.queueFile == "" {
		return
	}
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	data, err := os.ReadFile(eq.queueFile)
	if err != nil {
		if !os.IsNotExist(err) {
			errMsg := fmt.Sprintf("Error reading event queue file: %v", err)
			errorHandler.SaveError(errMsg, err)
		}
		return
	}

	var pending []model.ActivityEvent
	if err = json.Unmarshal(data, &pending); err != nil {
		errMsg := fmt.Sprintf("Error unmarshaling event queue: %v", err)
		errorHandler.SaveError(errMsg, err)
		return
	}
	if len(pending) > eq.capacity {
		pending = pending[len(pending)-eq.capacity:]
	}
	eq.queue = append(eq.queue, pending...)
	_ = os.Remove(eq.queueFile)
}

// Close stops the workers and persists whatever is still queued.
func (eq *EventQueue) Close() {
	eq.closeOnce.Do(func() {
		close(eq.doneChan)
		eq.wg.Wait()
		eq.mutex.Lock()
		eq.saveQueue()
		eq.mutex.Unlock()
	})
}

//---------------------------------------
//---------------------------------------

func emit(events IEventService, eventType model.ActivityType, userId string, showId int64, playlistId string) {
	if events == nil {
		return
	}
	events.Emit(model.ActivityEvent{
		Type:       eventType,
		UserId:     userId,
		ShowId:     showId,
		PlaylistId: playlistId,
		OccurredAt: time.Now().UTC(),
	})
}
