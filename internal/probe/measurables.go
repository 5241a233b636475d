package probe

import "github.com/tgrabiec/virt-stat/internal/model"

// Process-wide constant registry of measured quantities. Every probe
// shares these instances: Subject identity is by *Measurable pointer,
// so each quantity must be constructed exactly once and never replaced.

// /proc/stat
var (
	CPUNice         = model.NewCounter("cpu_nice", "Niced user time", "cpu")
	CPUSystem       = model.NewCounter("cpu_system", "System time", "cpu")
	CPUIdle         = model.NewCounter("cpu_idle", "Idle time", "cpu")
	CPUIOWait       = model.NewCounter("cpu_iowait", "I/O wait time", "cpu")
	Interrupts      = model.NewCounter("intr", "Interrupts", "cpu")
	ContextSwitches = model.NewCounter("ctxt", "Context switches", "cpu")
)

// /proc/vmstat
var PageFaults = model.NewCounter("pgfault", "Page faults", "memory")

// /proc/diskstats
var (
	DiskSectorsRead    = model.NewCounter("disk_sectors_read", "Sectors read", "disk")
	DiskSectorsWritten = model.NewCounter("disk_sectors_written", "Sectors written", "disk")
)

// /proc/net/dev
var (
	NetRxBytes = model.NewCounter("net_rx_bytes", "Bytes received", "net")
	NetTxBytes = model.NewCounter("net_tx_bytes", "Bytes sent", "net")
)

// KVM debugfs counters. The measurable name doubles as the file name
// under the kvm debug directory; the order here is the emission order.
// Which files actually exist varies by kernel and architecture, so the
// probe skips counters whose file is absent.
var kvmCounters = []*model.Measurable{
	model.NewCounter("exits", "VM exits", "kvm_exits"),
	model.NewCounter("io_exits", "I/O exits", "kvm_exits"),
	model.NewCounter("mmio_exits", "MMIO exits", "kvm_exits"),
	model.NewCounter("irq_exits", "IRQ exits", "kvm_exits"),
	model.NewCounter("halt_exits", "Halt exits", "kvm_exits"),
	model.NewCounter("signal_exits", "Signal exits", "kvm_exits"),

	model.NewCounter("irq_injections", "IRQ injections", "kvm_irq"),
	model.NewCounter("irq_window", "IRQ window exits", "kvm_irq"),
	model.NewCounter("nmi_injections", "NMI injections", "kvm_irq"),
	model.NewCounter("nmi_window", "NMI window exits", "kvm_irq"),
	model.NewCounter("request_irq", "IRQ window requests", "kvm_irq"),
	model.NewCounter("halt_wakeup", "Halt wakeups", "kvm_irq"),
	model.NewCounter("hypercalls", "Hypercalls", "kvm_irq"),

	model.NewCounter("mmu_cache_miss", "MMU cache misses", "kvm_mmu"),
	model.NewCounter("mmu_flooded", "MMU flooded pages", "kvm_mmu"),
	model.NewCounter("mmu_pde_zapped", "MMU PDEs zapped", "kvm_mmu"),
	model.NewCounter("mmu_pte_updated", "MMU PTEs updated", "kvm_mmu"),
	model.NewCounter("mmu_pte_write", "MMU PTE writes", "kvm_mmu"),
	model.NewCounter("mmu_recycled", "MMU pages recycled", "kvm_mmu"),
	model.NewCounter("mmu_shadow_zapped", "MMU shadow pages zapped", "kvm_mmu"),
	model.NewCounter("mmu_unsync", "MMU unsynced pages", "kvm_mmu"),

	model.NewCounter("pf_fixed", "Page faults fixed", "kvm_paging"),
	model.NewCounter("pf_guest", "Guest page faults", "kvm_paging"),
	model.NewCounter("largepages", "Large pages in use", "kvm_paging"),
	model.NewCounter("invlpg", "INVLPG instructions", "kvm_paging"),

	model.NewCounter("tlb_flush", "TLB flushes", "kvm_tlb"),
	model.NewCounter("remote_tlb_flush", "Remote TLB flushes", "kvm_tlb"),

	model.NewCounter("efer_reload", "EFER reloads", "kvm_reloads"),
	model.NewCounter("fpu_reload", "FPU reloads", "kvm_reloads"),
	model.NewCounter("host_state_reload", "Host state reloads", "kvm_reloads"),

	model.NewCounter("insn_emulation", "Instructions emulated", "kvm_emulation"),
	model.NewCounter("insn_emulation_fail", "Instruction emulation failures", "kvm_emulation"),
}

// KVMCounters returns the fixed registry of hypervisor counters.
func KVMCounters() []*model.Measurable { return kvmCounters }
