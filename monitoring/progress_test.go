package monitoring

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProgressBar", func() {
	It("should count concurrently", func() {
		bar := &ProgressBar{Total: 100}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					bar.IncrementInProgress(1)
					bar.MoveInProgressToFinished(1)
				}
			}()
		}
		wg.Wait()

		snapshot := bar.Snapshot()
		Expect(snapshot.Finished).To(Equal(uint64(100)))
		Expect(snapshot.InProgress).To(Equal(uint64(0)))
	})

	It("should count finished items", func() {
		bar := &ProgressBar{}
		bar.IncrementFinished(5)

		Expect(bar.Snapshot().Finished).To(Equal(uint64(5)))
	})
})
