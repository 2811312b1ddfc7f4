package document

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("lockTable", func() {
	var table *lockTable

	BeforeEach(func() {
		table = newLockTable(time.Second)
	})

	It("should evict the entry once the last holder releases", func() {
		release, err := table.acquire(context.Background(), "doc-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(table.size()).To(Equal(1))

		release()
		Expect(table.size()).To(BeZero())
	})

	It("should keep the entry alive while a waiter is queued", func() {
		release, err := table.acquire(context.Background(), "doc-1")
		Expect(err).ToNot(HaveOccurred())

		waiterDone := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			waiterRelease, err := table.acquire(context.Background(), "doc-1")
			Expect(err).ToNot(HaveOccurred())
			waiterRelease()
			close(waiterDone)
		}()

		Consistently(table.size, 50*time.Millisecond).Should(Equal(1))

		release()
		Eventually(waiterDone).Should(BeClosed())
		Eventually(table.size).Should(BeZero())
	})

	It("should drop the reference of a waiter that timed out", func() {
		table = newLockTable(30 * time.Millisecond)

		release, err := table.acquire(context.Background(), "doc-1")
		Expect(err).ToNot(HaveOccurred())

		_, err = table.acquire(context.Background(), "doc-1")
		Expect(err).To(MatchError(ErrBusy))
		Expect(table.size()).To(Equal(1))

		release()
		Expect(table.size()).To(BeZero())
	})

	It("should track documents independently", func() {
		releaseFirst, err := table.acquire(context.Background(), "doc-1")
		Expect(err).ToNot(HaveOccurred())
		releaseSecond, err := table.acquire(context.Background(), "doc-2")
		Expect(err).ToNot(HaveOccurred())
		Expect(table.size()).To(Equal(2))

		releaseFirst()
		Expect(table.size()).To(Equal(1))
		releaseSecond()
		Expect(table.size()).To(BeZero())
	})
})
