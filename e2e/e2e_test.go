package e2e_test

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	matomeBin string
	testHome  string
)

var _ = BeforeSuite(func() {
	matomeBin = os.Getenv("MATOME_E2E_BIN")
	if matomeBin == "" {
		Skip("MATOME_E2E_BIN is not set; skipping e2e")
	}

	// Isolate HOME so a developer's own settings file cannot leak in.
	var err error
	testHome, err = os.MkdirTemp("", "matome-e2e-")
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if testHome != "" {
		Expect(os.RemoveAll(testHome)).To(Succeed())
	}
})

// matomeExec runs the matome binary and returns combined stdout/stderr.
func matomeExec(args ...string) (string, error) {
	cmd := exec.Command(matomeBin, args...)
	cmd.Env = append(os.Environ(), "HOME="+testHome)
	output, err := cmd.CombinedOutput()
	fmt.Fprintf(GinkgoWriter, "$ matome %v\n%s", args, output)
	if err != nil {
		fmt.Fprintf(GinkgoWriter, "Error: %v\n", err)
	}
	return string(output), err
}

// writePlan writes a plan fixture into a fresh temp dir and returns its path.
func writePlan(name, content string) string {
	dir, err := os.MkdirTemp("", "matome-e2e-plan-")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

const changesPlan = `{
  "format_version": "1.2",
  "terraform_version": "1.9.8",
  "resource_changes": [
    {"address": "aws_instance.web", "change": {"actions": ["create"]}},
    {"address": "aws_s3_bucket.assets", "change": {"actions": ["delete", "create"]}},
    {"address": "aws_iam_role.deploy", "change": {"actions": ["update"]}},
    {"address": "module.vpc.aws_subnet.private[0]", "change": {"actions": ["no-op"]}}
  ]
}`

const noopPlan = `{
  "format_version": "1.2",
  "terraform_version": "1.9.8",
  "resource_changes": [
    {"address": "module.vpc.aws_subnet.private[0]", "change": {"actions": ["no-op"]}}
  ]
}`

var _ = Describe("matome", func() {
	It("displays version information", func() {
		By("Running matome version")
		output, err := matomeExec("version")
		Expect(err).NotTo(HaveOccurred())

		By("Checking output contains the version string")
		Expect(output).To(ContainSubstring("matome version"))
	})

	It("prints version information as JSON", func() {
		output, err := matomeExec("version", "-o", "json")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(ContainSubstring(`"goVersion"`))
		Expect(output).To(ContainSubstring(`"platform"`))
	})

	It("summarizes a plan", func() {
		path := writePlan("plan.json", changesPlan)

		By("Running matome against the plan")
		output, err := matomeExec("--path", path)
		Expect(err).NotTo(HaveOccurred())

		By("Checking both reports are shown")
		Expect(output).To(ContainSubstring("Action Statistics"))
		Expect(output).To(ContainSubstring("Resource Changes"))

		By("Checking delete+create collapses to replace")
		Expect(output).To(ContainSubstring("replace"))
		Expect(output).To(ContainSubstring("aws_s3_bucket.assets"))

		By("Checking the total row counts every change")
		Expect(output).To(ContainSubstring("Total"))

		By("Checking no-op resources are counted but not listed")
		Expect(output).To(ContainSubstring("no-op"))
		Expect(output).NotTo(ContainSubstring("module.vpc.aws_subnet.private[0]"))
	})

	It("narrows output to statistics", func() {
		path := writePlan("plan.json", changesPlan)

		output, err := matomeExec("--path", path, "--statistics")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(ContainSubstring("Action Statistics"))
		Expect(output).NotTo(ContainSubstring("Resource Changes"))
	})

	It("narrows output to resource changes", func() {
		path := writePlan("plan.json", changesPlan)

		output, err := matomeExec("--path", path, "--resources")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).NotTo(ContainSubstring("Action Statistics"))
		Expect(output).To(ContainSubstring("Resource Changes"))
	})

	It("reports no changes for a no-op plan", func() {
		path := writePlan("plan.json", noopPlan)

		output, err := matomeExec("--path", path, "--resources")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(ContainSubstring("No changes. Your infrastructure matches the configuration."))
	})

	It("colorizes output when forced", func() {
		path := writePlan("plan.json", changesPlan)

		output, err := matomeExec("--path", path, "--color")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(ContainSubstring("\x1b["))
	})

	It("rejects a plan without a .json extension", func() {
		path := writePlan("plan.txt", changesPlan)

		output, err := matomeExec("--path", path)
		Expect(err).To(HaveOccurred())
		Expect(output).To(ContainSubstring("Error [E101]"))
	})

	It("fails on a missing plan file", func() {
		output, err := matomeExec("--path", filepath.Join(testHome, "absent.json"))
		Expect(err).To(HaveOccurred())
		Expect(output).To(ContainSubstring("Error [E102]"))
	})

	It("fails on malformed plan JSON", func() {
		path := writePlan("plan.json", "{broken")

		output, err := matomeExec("--path", path)
		Expect(err).To(HaveOccurred())
		Expect(output).To(ContainSubstring("Error [E103]"))
	})

	It("requires the path flag", func() {
		output, err := matomeExec()
		Expect(err).To(HaveOccurred())
		Expect(output).To(ContainSubstring("required flag"))
	})

	It("generates shell completion", func() {
		output, err := matomeExec("completion", "bash")
		Expect(err).NotTo(HaveOccurred())
		Expect(output).To(ContainSubstring("bash completion"))
	})
})
