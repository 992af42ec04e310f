package function_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/promptlab/pkg/function"
)

var _ = Describe("Parse", func() {
	DescribeTable("detects calls",
		func(reply string, expected function.Result) {
			Expect(function.Parse(reply)).To(Equal(expected))
		},
		Entry("no function named", "Just a friendly reply.",
			function.Result{Kind: function.NoCall}),
		Entry("get_time", "Sure, calling get_time now.",
			function.Result{Kind: function.Call, Name: function.GetTime}),
		Entry("get_time in upper case", "GET_TIME",
			function.Result{Kind: function.Call, Name: function.GetTime}),
		Entry("add_numbers with arguments", "add_numbers(3, 5)",
			function.Result{Kind: function.Call, Name: function.AddNumbers, Args: []int{3, 5}}),
		Entry("add_numbers without a space", "Result: ADD_NUMBERS(10,20)",
			function.Result{Kind: function.Call, Name: function.AddNumbers, Args: []int{10, 20}}),
		Entry("add_numbers without arguments", "I would use add_numbers here",
			function.Result{Kind: function.Call, Name: function.AddNumbers}),
		Entry("add_numbers with negative arguments", "add_numbers(-3, 5)",
			function.Result{Kind: function.Call, Name: function.AddNumbers}),
		Entry("get_time wins over add_numbers", "add_numbers(1, 2) then get_time",
			function.Result{Kind: function.Call, Name: function.GetTime}),
	)
})

var _ = Describe("Dispatcher", func() {
	var d *function.Dispatcher

	BeforeEach(func() {
		d = &function.Dispatcher{
			Now: func() time.Time { return time.Date(2024, 5, 1, 9, 7, 3, 0, time.Local) },
		}
	})

	It("does nothing for NoCall", func() {
		out, ok := d.Dispatch(function.Result{Kind: function.NoCall})
		Expect(ok).To(BeFalse())
		Expect(out).To(BeEmpty())
	})

	It("reports the time for get_time", func() {
		out, ok := d.Dispatch(function.Parse("get_time"))
		Expect(ok).To(BeTrue())
		Expect(out).To(Equal("Current time is: 09:07:03"))
	})

	It("adds numbers", func() {
		out, ok := d.Dispatch(function.Parse("add_numbers(3, 5)"))
		Expect(ok).To(BeTrue())
		Expect(out).To(Equal("Sum: 8"))
	})

	It("reports unparseable add_numbers arguments", func() {
		out, ok := d.Dispatch(function.Parse("add_numbers(three, five)"))
		Expect(ok).To(BeTrue())
		Expect(out).To(Equal("Couldn't parse numbers for add_numbers."))
	})

	It("ignores unknown names", func() {
		_, ok := d.Dispatch(function.Result{Kind: function.Call, Name: "launch"})
		Expect(ok).To(BeFalse())
	})

	It("falls back to the wall clock on a nil dispatcher", func() {
		var nd *function.Dispatcher
		out, ok := nd.Dispatch(function.Parse("get_time"))
		Expect(ok).To(BeTrue())
		Expect(out).To(HavePrefix("Current time is: "))
	})
})
