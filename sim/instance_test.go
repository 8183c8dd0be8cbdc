package sim

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type instanceTestTime int64

var _ = Describe("Instance", func() {
	It("should return one scheduler under concurrent first access", func() {
		const numCallers = 32

		var wg sync.WaitGroup
		results := make([]*Scheduler[instanceTestTime], numCallers)
		for i := 0; i < numCallers; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				results[i] = Instance[instanceTestTime]()
			}(i)
		}
		wg.Wait()

		for _, s := range results {
			Expect(s).To(BeIdenticalTo(results[0]))
		}
		Expect(Instance[instanceTestTime]()).To(BeIdenticalTo(results[0]))
	})

	It("should keep one scheduler per time type", func() {
		a := Instance[VTimeInSec]()
		b := Instance[VTimeInCycle]()
		c := Instance[float64]()

		Expect(any(a)).NotTo(BeIdenticalTo(any(b)))
		Expect(any(a)).NotTo(BeIdenticalTo(any(c)))
		Expect(Instance[VTimeInSec]()).To(BeIdenticalTo(a))
	})

	It("should run actions that reach the scheduler through Instance", func() {
		type localTime uint32

		executed := 0
		Instance[localTime]().Submit(NewFuncAction(localTime(1), func() error {
			executed++
			Instance[localTime]().Shutdown()
			return nil
		}))

		Expect(Instance[localTime]().Run()).To(Succeed())
		Expect(executed).To(Equal(1))
		Expect(Instance[localTime]().CurrentTime()).To(Equal(localTime(1)))
	})
})
