package recurrence_test

import (
	"context"
	"time"

	"github.com/cofrinho/backend/internal/models"
	"github.com/cofrinho/backend/internal/recurrence"
)

func (suite *TestSuiteStandard) TestWorkerScansOnStart() {
	template := suite.createTemplate(models.Transaction{
		RecurrenceType: models.RecurrenceDaily,
		Date:           time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
	})

	worker := recurrence.NewWorker(suite.engine, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Run(ctx)
	}()

	// The start-up scan runs before the first tick.
	suite.Eventually(func() bool {
		return len(suite.generatedFor(template)) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	suite.Assert().Nil(<-done)
}
